package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alebedenko/lingualink/internal/common"
	"github.com/alebedenko/lingualink/internal/dbx"
	"github.com/alebedenko/lingualink/internal/vault"
)

// Export writes an encrypted snapshot of the whole store to a file.
func (a *App) Export(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: export <file>")
		return
	}

	passphrase, err := GetPassword(a.out, "Export passphrase")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(passphrase)

	blob, err := vault.Export(ctx, a.store, passphrase)
	if err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}

	if err := os.WriteFile(args[0], blob, 0o600); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Exported to %s\n", args[0])
}

// Import replaces the store contents with a previously exported snapshot.
// On SQL backends the replay runs in a single transaction so a failed
// import leaves the store as it was.
func (a *App) Import(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: import <file>")
		return
	}

	blob, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	passphrase, err := GetPassword(a.out, "Import passphrase")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(passphrase)

	if a.db == nil {
		err = vault.Import(ctx, a.store, blob, passphrase)
	} else {
		err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return vault.Import(ctx, a.txStore(tx), blob, passphrase)
		})
	}
	if err != nil {
		fmt.Fprintf(a.out, "Import failed: %v\n", err)
		return
	}

	a.refreshCurrent(ctx)
	fmt.Fprintln(a.out, "Import complete")
}
