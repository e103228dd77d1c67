package cli

import (
	"context"
	"fmt"

	"github.com/mayankt25/backend/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account. On
// success the issued token is installed and cached, so the user is signed
// in right away. The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}

	a.api.SetToken(token)
	a.userEmail = email
	a.saveToken(token)

	fmt.Fprintln(a.out, "Registered and signed in.")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the token is installed and cached.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.api.SetToken(token)
	a.userEmail = email
	a.saveToken(token)

	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

func (a *App) Logout() {
	a.clearToken()
	fmt.Fprintln(a.out, "Signed out.")
}

// WhoAmI fetches and prints the authenticated account.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		return err
	}

	a.userEmail = user.Email
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", user.Name, user.Email, user.ID)
	return nil
}
