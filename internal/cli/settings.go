package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alebedenko/lingualink/internal/settings"
)

func (a *App) ShowSettings(ctx context.Context) {
	s, err := a.settings.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "theme:           %s\n", s.Theme)
	fmt.Fprintf(a.out, "language:        %s\n", s.Language)
	fmt.Fprintf(a.out, "target language: %s\n", s.TargetLanguage)
	fmt.Fprintf(a.out, "notifications:   %v\n", s.Notifications)
}

// SetSetting updates one preference: set <theme|language|target|notifications> <value>.
// Language codes are validated against the supported table before saving.
func (a *App) SetSetting(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: set <theme|language|target|notifications> <value>")
		return
	}

	field, value := args[0], args[1]

	var patch settings.Patch
	switch field {
	case "theme":
		if value != settings.ThemeDark && value != settings.ThemeLight {
			fmt.Fprintln(a.out, "Theme must be dark or light")
			return
		}
		patch.Theme = &value
	case "language":
		if !settings.Supported(value) {
			fmt.Fprintf(a.out, "Unsupported language %q (see 'langs')\n", value)
			return
		}
		patch.Language = &value
	case "target":
		if !settings.Supported(value) {
			fmt.Fprintf(a.out, "Unsupported language %q (see 'langs')\n", value)
			return
		}
		patch.TargetLanguage = &value
	case "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			fmt.Fprintln(a.out, "Notifications must be true or false")
			return
		}
		patch.Notifications = &b
	default:
		fmt.Fprintln(a.out, "Unknown setting:", field)
		return
	}

	s, err := a.settings.Save(ctx, patch)
	if err != nil {
		fmt.Fprintf(a.out, "Save failed: %v\n", err)
		return
	}

	if field == "theme" {
		// the CLI analog of toggling the dashboard's CSS class
		fmt.Fprintf(a.out, "Theme is now %s\n", s.Theme)
		return
	}
	fmt.Fprintln(a.out, "Saved")
}

func (a *App) Languages() {
	fmt.Fprintln(a.out, "Supported languages:", strings.Join(settings.Languages(), ", "))
}
