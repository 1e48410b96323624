package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/octobees/portfolio-contact/api/internal/config"
)

func printBanner(w io.Writer, cfg *config.Config, routes []*echo.Route) {
	fmt.Fprintf(w, "contact server listening on http://localhost:%s\n", cfg.Port)
	fmt.Fprintf(w, "store: %s, mail notifications: %s\n\n", cfg.StoreDriver, lo.Ternary(cfg.Mail.Enabled(), "on", "off"))

	rows := lo.Map(routes, func(r *echo.Route, _ int) []string {
		return []string{r.Method, r.Path}
	})
	slices.SortFunc(rows, func(a, b []string) int {
		if c := strings.Compare(a[1], b[1]); c != 0 {
			return c
		}
		return strings.Compare(a[0], b[0])
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Path"})
	table.AppendBulk(rows)
	table.Render()
}
