package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/mmp/api"
	"github.com/MixinNetwork/mmp/config"
	"github.com/MixinNetwork/mmp/nft"
	"github.com/MixinNetwork/mmp/payout"
	"github.com/MixinNetwork/mmp/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bp := flag.String("d", "~/.mixin/mmp/data", "database directory path")
	cp := flag.String("c", "~/.mixin/mmp/config.toml", "configuration file path")
	flag.Parse()

	conf, err := config.Setup(expandHome(*cp))
	if err != nil {
		panic(err)
	}

	db, err := store.OpenBadger(ctx, expandHome(*bp))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ledger, err := nft.NewLedger(db, conf.Roles())
	if err != nil {
		panic(err)
	}
	ledger.SetPaymentAsset(conf.Mixin.AssetId)

	if conf.Mixin.Enabled() {
		sender, err := payout.NewMixinSender(ctx, &conf.Mixin)
		if err != nil {
			panic(err)
		}
		go payout.NewWorker(db, sender, conf.Mixin.AssetId).Run(ctx)
	} else {
		logger.Printf("mixin keystore not configured, fees stay pending\n")
	}

	err = api.NewServer(ledger).ListenAndServe(ctx, conf.HTTP.Listen)
	if err != nil {
		panic(err)
	}
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	usr, _ := user.Current()
	return filepath.Join(usr.HomeDir, p[2:])
}
