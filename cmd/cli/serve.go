// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"net/http"

	"wol-manager/internal/api"
	"wol-manager/internal/web"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var flagServePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long:  `Starts an HTTP server exposing the host inventory and wake actions as a JSON API plus a minimal web page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		router := mux.NewRouter()

		api.NewServer(registry, dispatcher, log).Register(router)

		// Static assets must be registered after the API routes to avoid
		// shadowing them.
		router.PathPrefix("/").Handler(http.FileServer(web.GetFileSystem()))

		addr := fmt.Sprintf(":%d", flagServePort)
		fmt.Printf("Starting web server on %s\n", addr)
		return http.ListenAndServe(addr, router)
	},
}

func init() {
	serveCmd.Flags().IntVar(&flagServePort, "port", 8080, "port to listen on")
}
