package cli

import (
	"context"
	"fmt"
)

func (a *App) APIKey(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: apikey new <name> | apikey list | apikey revoke <id>")
		return
	}

	switch args[0] {
	case "new":
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: apikey new <name>")
			return
		}
		key, token, err := a.apikeys.Issue(ctx, args[1])
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(a.out, "Created key %s (%s)\n", key.ID, key.Name)
		fmt.Fprintln(a.out, "Token (shown once, store it now):")
		fmt.Fprintln(a.out, token)

	case "list":
		keys, err := a.apikeys.List(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		if len(keys) == 0 {
			fmt.Fprintln(a.out, "No API keys")
			return
		}
		for _, k := range keys {
			fmt.Fprintf(a.out, "%s  %-20s  created %s\n", k.ID, k.Name, k.CreatedAt.Format("2006-01-02 15:04"))
		}

	case "revoke":
		if len(args) != 2 {
			fmt.Fprintln(a.out, "Usage: apikey revoke <id>")
			return
		}
		if err := a.apikeys.Revoke(ctx, args[1]); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		fmt.Fprintln(a.out, "Revoked")

	default:
		fmt.Fprintln(a.out, "Unknown subcommand:", args[0])
	}
}
