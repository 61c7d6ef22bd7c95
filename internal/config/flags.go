package config

import (
	"errors"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they fill in once fs is parsed.
//
// Flags:
//
//	-c, --config            JSON or YAML config file
//	    --storage-driver    sqlite | file
//	-d, --dsn               database path (or JSON state file)
//	    --viewer-url        share viewer base URL
//	    --shortener-url     link shortener base URL
//	    --shortener-timeout shortener request timeout (e.g. 5s)
//	    --no-shorten        never shorten share links
//	-a, --daemon-address    daemon address host:port
//	    --refresh-interval  daemon tab source refresh period
//	-t, --tabs              tab source file (.json session or .html bookmarks)
//	    --tabs-kind         json | html
//	    --clipboard-file    clipboard fallback file
//	    --no-osc52          disable the OSC 52 clipboard strategy
//	    --compression       xz | none
//	    --log-file          log file path
//	    --log-level         zerolog level name
func BindFlags(fs *pflag.FlagSet) *Config {
	cfg := &Config{}

	fs.StringVarP(&cfg.FilePath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.Storage.Driver, "storage-driver", "", "Storage driver: sqlite or file")
	fs.StringVarP(&cfg.Storage.DSN, "dsn", "d", "", "Database path or JSON state file")
	fs.StringVar(&cfg.Share.ViewerURL, "viewer-url", "", "Share viewer base URL")
	fs.StringVar(&cfg.Share.Compression, "compression", "", "Share payload compression: xz or none")
	fs.StringVar(&cfg.Shortener.URL, "shortener-url", "", "Link shortener base URL")
	fs.DurationVar(&cfg.Shortener.Timeout, "shortener-timeout", 0, "Link shortener timeout (e.g., 5s)")
	fs.BoolVar(&cfg.Shortener.Disabled, "no-shorten", false, "Never shorten share links")
	fs.VarP(&netAddress{target: &cfg.Daemon.Address}, "daemon-address", "a", "Daemon address host:port")
	fs.DurationVar(&cfg.Daemon.RefreshInterval, "refresh-interval", 0, "How often the daemon re-reads the tab source")
	fs.StringVarP(&cfg.Source.File, "tabs", "t", "", "Tab source file (.json session or .html bookmarks)")
	fs.StringVar(&cfg.Source.Kind, "tabs-kind", "", "Tab source kind: json or html")
	fs.StringVar(&cfg.Clipboard.FallbackFile, "clipboard-file", "", "Clipboard fallback file")
	fs.BoolVar(&cfg.Clipboard.DisableOSC52, "no-osc52", false, "Disable the OSC 52 clipboard strategy")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}

// netAddress is a pflag.Value that validates host:port before storing it.
type netAddress struct {
	target *string
}

func (a *netAddress) String() string {
	if a.target == nil {
		return ""
	}
	return *a.target
}

func (a *netAddress) Type() string {
	return "host:port"
}

// Set accepts host:port with a port in 1..65535. The host must be an IP
// address, "localhost" or empty (all interfaces).
func (a *netAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	*a.target = s
	return nil
}
