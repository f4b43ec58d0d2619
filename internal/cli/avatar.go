package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alebedenko/lingualink/internal/accounts"
)

// Avatar uploads an image file and stores the resulting ref in the profile.
func (a *App) Avatar(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: avatar <path-to-image>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	ref, err := a.avatars.Put(ctx, data)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %v\n", err)
		return
	}

	profile, err := a.accounts.UpdateProfile(ctx, a.current.ID, accounts.ProfilePatch{Avatar: &ref})
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %v\n", err)
		return
	}
	a.current = profile
	fmt.Fprintln(a.out, "Avatar updated")
}
