package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"workshift-bot/pkg/logging"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "workshift",
		Short:         "Учёт смен и расчёт оплаты по дневному и ночному тарифу",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newCalcCmd())
	return root
}

func main() {
	logging.Setup()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Ошибка", "err", err)
		os.Exit(1)
	}
}
