package cli

import (
	"context"
	"fmt"

	"github.com/alebedenko/lingualink/internal/common"
)

func (a *App) Register(ctx context.Context) {

	nickname, err := GetSimpleText(a.reader, "Enter nickname", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Register(ctx, nickname, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}

	// sign in right away, like the dashboard did after sign-up
	if err := a.sessions.Set(ctx, profile); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.current = profile

	fmt.Fprintf(a.out, "Welcome, %s!\n", profile.Nickname)
}

func (a *App) Login(ctx context.Context) {

	nickname, err := GetSimpleText(a.reader, "Enter nickname", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Authenticate(ctx, nickname, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return
	}

	if err := a.sessions.Set(ctx, profile); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.current = profile

	fmt.Fprintf(a.out, "Welcome back, %s!\n", profile.Nickname)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.sessions.Set(ctx, nil); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.current = nil
	fmt.Fprintln(a.out, "Signed out")
}

func (a *App) WhoAmI(ctx context.Context) {
	a.refreshCurrent(ctx)
	if a.current == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	p := a.current
	fmt.Fprintf(a.out, "%s (%s plan), id %s\n", p.Nickname, p.Plan, p.ID)
	if p.Email != "" {
		fmt.Fprintf(a.out, "  email:   %s\n", p.Email)
	}
	if p.Phone != "" {
		fmt.Fprintf(a.out, "  phone:   %s\n", p.Phone)
	}
	if p.Country != "" {
		fmt.Fprintf(a.out, "  country: %s\n", p.Country)
	}
	if p.Avatar != "" {
		url, err := a.avatars.URL(ctx, p.Avatar)
		if err != nil {
			a.log.Warn(ctx, "error resolving avatar url", "err", err)
		} else {
			fmt.Fprintf(a.out, "  avatar:  %s\n", url)
		}
	}
}
