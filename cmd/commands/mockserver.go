package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tunemix/tunemix/internal/cli"
	"github.com/tunemix/tunemix/pkg/mockservice"
)

const shutdownTimeout = 5 * time.Second

var (
	mockAddr      string
	mockPublicURL string
	mockQuiet     bool
)

// NewMockServerCommand creates the mock-server command
func NewMockServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Run a local playlist service for trying out the builder",
		Long: `Run a local stand-in for the playlist service.

It accepts the same requests the builder sends and answers with
made-up playlist links, so the whole flow can be tried offline.

Examples:
  # Listen on the default address
  tunemix mock-server

  # Listen elsewhere and point the builder at it
  tunemix mock-server --addr :9090 &
  TUNEMIX_SERVICE_URL=http://localhost:9090 tunemix`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateListenAddr(mockAddr); err != nil {
				return err
			}
			if mockPublicURL != "" {
				return cli.ValidateServiceURL(mockPublicURL)
			}
			return nil
		},
		RunE: runMockServer,
	}

	cmd.Flags().StringVar(&mockAddr, "addr", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&mockPublicURL, "public-url", "", "Base of the playlist links handed out (defaults to the listen address)")
	cmd.Flags().BoolVar(&mockQuiet, "no-request-log", false, "Do not log each request")

	return cmd
}

func runMockServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", mockAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", mockAddr, err)
	}

	publicURL := mockPublicURL
	if publicURL == "" {
		publicURL = publicURLFor(ln.Addr())
	}

	return serveMock(ctx, ln, mockservice.New(publicURL), !mockQuiet)
}

// serveMock serves until ctx is cancelled, then shuts down gracefully
func serveMock(ctx context.Context, ln net.Listener, svc *mockservice.Server, logRequests bool) error {
	srv := &http.Server{
		Handler:           svc.Router(logRequests),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	cli.PrintSuccess("Mock playlist service listening on %s", ln.Addr())
	cli.PrintInfo("Playlist links will start with %s", svc.PublicURL)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("mock server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down mock server: %w", err)
	}
	cli.PrintInfo("Mock playlist service stopped")
	return nil
}

func publicURLFor(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
