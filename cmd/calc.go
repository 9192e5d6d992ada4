package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"workshift-bot/config"
	"workshift-bot/internal/app/service"
	"workshift-bot/internal/model"
	"workshift-bot/pkg/clocktime"
)

func newCalcCmd() *cobra.Command {
	var rates model.RateTable
	cmd := &cobra.Command{
		Use:   "calc START END",
		Short: "Посчитать дневные и ночные часы и оплату смены",
		Example: "  workshift calc 22:00 06:00\n" +
			"  workshift calc 03:00 11:00 --day 34 --night 37.70",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				if !clocktime.Valid(a) {
					return fmt.Errorf("некорректное время %q, ожидается ЧЧ:ММ", a)
				}
			}
			// Ставки по умолчанию берутся из окружения
			if !cmd.Flags().Changed("day") || !cmd.Flags().Changed("night") {
				cfg := config.LoadDefaults()
				if !cmd.Flags().Changed("day") {
					rates.Day = cfg.DayRate
				}
				if !cmd.Flags().Changed("night") {
					rates.Night = cfg.NightRate
				}
			}

			e := service.CalculateEarnings(args[0], args[1], rates).Rounded()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Смена:  %s – %s\n", args[0], args[1])
			fmt.Fprintf(out, "День:   %s ч × %s\n", model.FormatHours(e.DayHours), model.FormatMoney(rates.Day))
			fmt.Fprintf(out, "Ночь:   %s ч × %s\n", model.FormatHours(e.NightHours), model.FormatMoney(rates.Night))
			fmt.Fprintf(out, "Итого:  %s\n", model.FormatMoney(e.TotalPay))
			return nil
		},
	}
	cmd.Flags().Float64Var(&rates.Day, "day", 0, "дневная ставка за час")
	cmd.Flags().Float64Var(&rates.Night, "night", 0, "ночная ставка за час")
	return cmd
}
