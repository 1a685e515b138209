package main

import (
	_ "embed"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tomz197/vectoroids/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")
	if err := config.Load(); err != nil {
		logger.Fatal("config", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "22")

	page := renderPage(htmlPage, sshHost, sshPort)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("starting web server", "url", "http://"+addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the connection command into the landing page.
func renderPage(page, sshHost, sshPort string) string {
	command := "ssh " + sshHost
	if sshPort != "" && sshPort != "22" {
		command = "ssh -p " + sshPort + " " + sshHost
	}
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHCommand}}", command,
	).Replace(page)
}
