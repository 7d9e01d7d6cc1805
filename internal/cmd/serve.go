// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/gostencil/stencil/internal/logger"
	"github.com/gostencil/stencil/internal/routes"
	_ "github.com/gostencil/stencil/internal/routes/hello" // example route provider
	"github.com/gostencil/stencil/internal/server"
)

const (
	serveCmdName  = "serve"
	serveCmdShort = "start the HTTP server"
	serveCmdLong  = `Start the HTTP server.
	The server mounts every route registered by the imported route providers
	plus the routes declared in the optional YAML manifest, and answers on the
	host and port configured through the HTTP_HOST and HTTP_PORT environment
	variables. It runs until interrupted.`

	serveCmdExample = `# Serve the registered routes plus a manifest of static ones
	stencil serve --routes-file routes.yaml`

	routesFileFlagName  = "routes-file"
	routesFileFlagShort = "r"
	routesFileFlagUsage = "Path to a YAML manifest of static JSON routes to mount at startup"
)

// serveFlags collects the CLI options of the serve command.
type serveFlags struct {
	routesFile string
}

// addFlags registers the CLI flags on cmd.
func (f *serveFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&f.routesFile,
		routesFileFlagName,
		routesFileFlagShort,
		"",
		routesFileFlagUsage)
}

// ServeCmd returns the Cobra command that runs the HTTP server.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdName,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := runServe(cmd.Context(), flags, server.NewServer); err != nil {
				cmd.PrintErrln(err)
				return err
			}
			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// runServe mounts the registered routes on a freshly built server and serves
// until the context is done or an interrupt arrives. The server builder is a
// parameter so tests can substitute a fake.
func runServe(ctx context.Context, flags *serveFlags, build func(context.Context) (server.Server, error)) error {
	log := logger.FromContext(ctx)

	if flags.routesFile != "" {
		loaded, err := routes.LoadManifest(flags.routesFile)
		if err != nil {
			return err
		}
		for _, route := range loaded {
			routes.Register(route)
		}
	}

	srv, err := build(ctx)
	if err != nil {
		return err
	}

	mounted := routes.All()
	for _, route := range mounted {
		srv.AddRoute(route.Method, route.Path, route.Handler)
	}

	notifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv.StartAsync(ctx)
	log.Verbose("http server started")

	<-notifyCtx.Done()
	log.Verbose("shutting down http server")
	return srv.Stop()
}
