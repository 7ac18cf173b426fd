package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrbrightsides/mermaind/internal/config"
	"github.com/mrbrightsides/mermaind/internal/page"
	"github.com/mrbrightsides/mermaind/internal/server"
	"github.com/mrbrightsides/mermaind/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page over HTTP",
	Long:  `Starts an HTTP server that serves the page at /, the bare embed at /embed and the computed layout at /api/layout.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("watch", false, "reload the page when the config or sidebar file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}

	renderer, err := page.New(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAll,
	}, renderer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchFiles, _ := cmd.Flags().GetBool("watch"); watchFiles {
		var w *watch.Watcher
		w, err = watch.New(watchPaths(cfg), func() error {
			next, err := loadConfig()
			if err != nil {
				return err
			}
			if err := renderer.Reload(next); err != nil {
				return err
			}
			// sidebar.markdown_file may have moved.
			return w.Watch(watchPaths(next))
		})
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx)
		slog.Info("Watching for changes", "config", cfgFile, "sidebar", cfg.Sidebar.MarkdownFile)
	}

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Shutdown", "err", err)
		}
	}()

	slog.Info("mermaind starting", "version", Version, "port", cfg.Server.Port, "embed", cfg.Embed.URL)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchPaths lists the files whose changes trigger a reload.
func watchPaths(cfg *config.Config) []string {
	paths := []string{cfgFile}
	if cfg.Sidebar.MarkdownFile != "" {
		paths = append(paths, cfg.Sidebar.MarkdownFile)
	}
	return paths
}
