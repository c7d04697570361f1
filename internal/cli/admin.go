package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Users lists all accounts. Admin only.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	snap, err := a.controller.Snapshot(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range snap.Users {
		fmt.Printf("%-38s %-14s %-6s %s\n", u.ID, u.Username, u.Role, u.Status)
	}
	return nil
}

// Ban flips a user's status between active and banned. Admin accounts are
// never changed.
func (a *App) Ban(ctx context.Context, id string) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}
	if id == "" {
		fmt.Println("Usage: ban <userId>")
		return nil
	}

	if err := a.controller.OnToggleBan(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Done.")
	return nil
}

// DeletePost removes a post after an explicit confirmation. Admin only.
func (a *App) DeletePost(ctx context.Context, id string) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	postID, err := strconv.Atoi(id)
	if err != nil {
		fmt.Println("Usage: delpost <postId>")
		return nil
	}

	ok, err := Confirm(a.reader, "Delete this post?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.controller.OnDeletePost(ctx, postID); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
