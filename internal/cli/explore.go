package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Posts lists the community posts.
func (a *App) Posts(ctx context.Context) error {
	snap, err := a.controller.Snapshot(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, p := range snap.Posts {
		fmt.Printf("#%d  %-28s by %-12s [%s] %d likes  %s\n",
			p.ID, p.Title, p.Author, p.SeriesID, p.Likes, strings.Join(p.Tags, ", "))
	}
	return nil
}
