package main

import (
	"fmt"

	"github.com/go-chi/docgen"
	httpapi "github.com/jekabolt/currency-exchange/internal/api/http"
	"github.com/spf13/cobra"
)

func routes(cmd *cobra.Command, args []string) error {
	s := httpapi.New(&httpapi.Config{}, nil, nil, version)
	fmt.Fprintln(cmd.OutOrStdout(), docgen.JSONRoutesDoc(s.Routes()))
	return nil
}
