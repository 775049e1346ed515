package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/tanglekit/tangle-client/pkg/client"
	"github.com/tanglekit/tangle-client/pkg/httputil"
)

const (
	// NodesKey is the space-separated list of node URLs the client may use
	NodesKey = "NODES"
	// SyncIntervalKey is the interval in milliseconds between two refreshes of the healthy node pool
	SyncIntervalKey = "SYNC_INTERVAL"
	// LocalPoWKey selects whether the proof of work is computed locally instead of by the issuing node
	LocalPoWKey = "LOCAL_POW"
	// PoWTargetScoreKey overrides the proof-of-work difficulty target
	PoWTargetScoreKey = "POW_TARGET_SCORE"
	// ProbeLimitKey is the number of health probes per second issued by the pool synchronizer
	ProbeLimitKey = "PROBE_LIMIT"
	// ProbeTokenBurstKey is the number of burst tokens permitted to the probe rate limiter
	ProbeTokenBurstKey = "PROBE_TOKEN"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// StatsIntervalKey is the interval between two runtime stats reports, 0 disables them
	StatsIntervalKey = "STATS_INTERVAL"
	// RequestTimeoutKey is the timeout applied to every request towards a node
	RequestTimeoutKey = "REQUEST_TIMEOUT"
	// DatadirKey is the local data directory used by the CLI to store its state
	DatadirKey = "DATA_DIR_PATH"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("tangle-client", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("TANGLE")
	vip.AutomaticEnv()

	vip.SetDefault(NodesKey, "http://localhost:14265")
	vip.SetDefault(SyncIntervalKey, 60000)
	vip.SetDefault(LocalPoWKey, true)
	vip.SetDefault(PoWTargetScoreKey, 0)
	vip.SetDefault(ProbeLimitKey, 10)
	vip.SetDefault(ProbeTokenBurstKey, 1)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(StatsIntervalKey, 0)
	vip.SetDefault(RequestTimeoutKey, "30s")
	vip.SetDefault(DatadirKey, defaultDatadir)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetStringSlice ...
func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetFloat ...
func GetFloat(key string) float64 {
	return vip.GetFloat64(key)
}

//GetDuration ...
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

//GetDatadir ...
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetNodes returns the configured node list
func GetNodes() []string {
	return GetStringSlice(NodesKey)
}

// GetClient returns a started client built from the current config
func GetClient() (*client.Client, error) {
	httputil.SetTimeout(GetDuration(RequestTimeoutKey))

	return client.NewClient(client.Opts{
		Nodes:                      GetNodes(),
		SyncIntervalInMilliseconds: GetInt(SyncIntervalKey),
		LocalPoW:                   GetBool(LocalPoWKey),
		TargetScore:                GetFloat(PoWTargetScoreKey),
		ProbesPerSecond:            GetInt(ProbeLimitKey),
		ProbeTokenBurst:            GetInt(ProbeTokenBurstKey),
	})
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

func validate() error {
	nodes := GetNodes()
	if len(nodes) <= 0 {
		return fmt.Errorf("node list must not be empty")
	}
	for _, node := range nodes {
		if _, err := url.ParseRequestURI(node); err != nil {
			return fmt.Errorf("node endpoint is not a valid url: %s", err)
		}
	}

	if GetInt(SyncIntervalKey) <= 0 {
		return fmt.Errorf("sync interval must be a positive number of milliseconds")
	}
	if GetFloat(PoWTargetScoreKey) < 0 {
		return fmt.Errorf("proof-of-work target score must not be negative")
	}
	if GetDuration(RequestTimeoutKey) <= 0 {
		return fmt.Errorf("request timeout must be a positive duration")
	}

	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}
	return nil
}

// InitDatadir creates the datadir if needed. Called by the CLI before
// persisting any state, not by the library.
func InitDatadir() error {
	datadir := GetDatadir()
	if _, err := os.Stat(datadir); os.IsNotExist(err) {
		return os.MkdirAll(datadir, os.ModeDir|0755)
	}
	return nil
}
