package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.current.Nickname)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to LinguaLink (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "lingua %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "profile":
			a.Profile(ctx, args)
		case "passwd":
			a.ChangePassword(ctx)
		case "settings":
			a.ShowSettings(ctx)
		case "set":
			a.SetSetting(ctx, args)
		case "langs":
			a.Languages()
		case "apikey":
			a.APIKey(ctx, args)
		case "avatar":
			a.Avatar(ctx, args)
		case "export":
			a.Export(ctx, args)
		case "import":
			a.Import(ctx, args)
		case "delete-account":
			a.DeleteAccount(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, profile, passwd, settings, set, langs, apikey, avatar, export, import, delete-account, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, settings, set, langs, export, import, exit")
	}
}
