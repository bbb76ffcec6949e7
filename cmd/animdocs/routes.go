// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"animdocs/internal/handlers"
	"animdocs/internal/render"
	"animdocs/internal/router"
	"animdocs/internal/store"
)

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes the server registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := render.New()
			if err != nil {
				return err
			}
			docs := handlers.NewDocs(store.New(), renderer, nil, handlers.SettingsFrom(a.cfg))
			r, err := router.New(docs, nil)
			if err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), r)
		},
	}
}

func printRoutes(w io.Writer, r chi.Routes) error {
	return chi.Walk(r, func(method, route string, _ http.Handler, mws ...func(http.Handler) http.Handler) error {
		_, err := fmt.Fprintf(w, "%-6s %s\n", method, route)
		return err
	})
}
