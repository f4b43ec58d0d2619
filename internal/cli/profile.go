package cli

import (
	"context"
	"fmt"

	"github.com/alebedenko/lingualink/internal/accounts"
	"github.com/alebedenko/lingualink/internal/common"
)

// Profile edits one profile field: profile <nickname|email|phone|country|plan> <value>
func (a *App) Profile(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: profile <nickname|email|phone|country|plan> <value>")
		return
	}

	field, value := args[0], args[1]

	var patch accounts.ProfilePatch
	switch field {
	case "nickname":
		patch.Nickname = &value
	case "email":
		patch.Email = &value
	case "phone":
		patch.Phone = &value
	case "country":
		patch.Country = &value
	case "plan":
		plan := accounts.Plan(value)
		switch plan {
		case accounts.PlanFree, accounts.PlanPro, accounts.PlanPremium, accounts.PlanEnterprise:
		default:
			fmt.Fprintln(a.out, "Unknown plan:", value)
			return
		}
		patch.Plan = &plan
	default:
		fmt.Fprintln(a.out, "Unknown field:", field)
		return
	}

	profile, err := a.accounts.UpdateProfile(ctx, a.current.ID, patch)
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %v\n", err)
		return
	}
	a.current = profile
	fmt.Fprintln(a.out, "Profile updated")
}

func (a *App) ChangePassword(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}

	oldPassword, err := GetPassword(a.out, "Current password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := GetPassword(a.out, "New password")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(newPassword)

	if err := a.accounts.ChangePassword(ctx, a.current.ID, string(oldPassword), string(newPassword)); err != nil {
		fmt.Fprintf(a.out, "Password change failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Password changed")
}

func (a *App) DeleteAccount(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete account %q and sign out?", a.current.Nickname), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.accounts.DeleteAccount(ctx, a.current.ID); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %v\n", err)
		return
	}
	a.current = nil
	fmt.Fprintln(a.out, "Account deleted")
}
