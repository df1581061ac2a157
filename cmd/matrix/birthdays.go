package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/matrix-core/internal/domain/services"
	"github.com/ersonp/matrix-core/internal/infrastructure/config"
	"github.com/ersonp/matrix-core/internal/infrastructure/parsers"
)

// monthNames are the report headings, index 1-12.
var monthNames = [13]string{
	"",
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL",
	"MAIO", "JUNHO", "JULHO", "AGOSTO",
	"SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

func newBirthdaysCmd() *cobra.Command {
	var (
		fullYear bool
		update   bool
	)

	cmd := &cobra.Command{
		Use:   "birthdays [month]",
		Short: "List asset birthdays",
		Long:  "Lists asset birthdays for a month (current month by default) or the whole year.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBirthdays(cmd, args, fullYear, update)
		},
	}

	cmd.Flags().BoolVarP(&fullYear, "year", "y", false, "Show the full-year calendar")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "Recompute each asset's idade field and write the dataset back")

	return cmd
}

func runBirthdays(cmd *cobra.Command, args []string, fullYear, update bool) error {
	return withDatasets(func(cfg *config.Config, basePath string, ds *datasets) error {
		today := time.Now()
		out := cmd.OutOrStdout()

		if update {
			updated := services.UpdateAges(ds.Assets, today)
			if updated == 0 {
				return fmt.Errorf("no asset with a valid data_nascimento in %s", ds.assetsPath)
			}
			if err := parsers.SaveFile(ds.assetsPath, ds.rawAssets); err != nil {
				return err
			}
			fmt.Fprintf(out, "Updated idade on %d assets.\n", updated)
			fmt.Fprintf(out, "Wrote %s\n", ds.assetsPath)
			return nil
		}

		if fullYear {
			printCalendar(out, services.BirthdayCalendar(ds.Assets, today))
			return nil
		}

		month := today.Month()
		if len(args) == 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}

		printMonth(out, services.BirthdaysInMonth(ds.Assets, month, today), month)
		return nil
	})
}

func printMonth(w io.Writer, entries []services.BirthdayEntry, month time.Month) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Nenhum aniversariante encontrado.")
		return
	}

	fmt.Fprintf(w, "\nANIVERSARIANTES DE %s\n\n", monthNames[month])
	printBirthdayHeader(w)
	for _, e := range entries {
		printBirthdayRow(w, e)
	}
	fmt.Fprintln(w)
}

func printCalendar(w io.Writer, cal map[time.Month]map[int][]services.BirthdayEntry) {
	if len(cal) == 0 {
		fmt.Fprintln(w, "Nenhum aniversariante encontrado.")
		return
	}

	fmt.Fprintln(w, "\nCALENDÁRIO ANUAL DE ANIVERSÁRIOS")
	for month := time.January; month <= time.December; month++ {
		days, ok := cal[month]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\nMÊS DE %s\n", monthNames[month])
		printBirthdayHeader(w)

		sorted := make([]int, 0, len(days))
		for day := range days {
			sorted = append(sorted, day)
		}
		sort.Ints(sorted)

		for _, day := range sorted {
			for _, e := range days[day] {
				printBirthdayRow(w, e)
			}
		}
	}
	fmt.Fprintln(w)
}

func printBirthdayHeader(w io.Writer) {
	fmt.Fprintf(w, "%-5s %-15s %-20s %-12s %s\n", "Dia", "Nome", "Sobrenome", "Nascimento", "Idade")
	fmt.Fprintln(w, strings.Repeat("-", 70))
}

func printBirthdayRow(w io.Writer, e services.BirthdayEntry) {
	fmt.Fprintf(w, "%-5d %-15s %-20s %-12s %d\n",
		e.Date.Day(), e.Nome, e.Sobrenome, e.Date.Format("02/01/2006"), e.Age)
}
