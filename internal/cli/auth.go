package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to establish a session. Wrong
// credentials and banned accounts are reported without a session change.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.controller.OnLogin(ctx, username, password); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Signed in as %s\n", username)
	return nil
}

// Register prompts for credentials and creates a new account. On success the
// new account is signed in immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.controller.OnRegister(ctx, username, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You are signed in.")
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.OnLogout(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// WhoAmI prints the active session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.controller.User()
	if u == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s (%s, %s)\n", u.Username, u.Role, u.Status)
	return nil
}
