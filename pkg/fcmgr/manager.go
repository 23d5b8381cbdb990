// Config-driven construction of an fc.Client for the command line tool and
// for embedders that want file/env based configuration rather than filling
// in fc.Config by hand.
package fcmgr

import (
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/serverlessresearch/fcgo/pkg/fc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Manager struct {
	Client *fc.Client
	Logger logrus.FieldLogger
	Cfg    *viper.Viper
}

// NewManager builds a manager from generic options. Recognized options:
//
//	"config-file" (string): explicit config file path ("~" is expanded)
//	"logger" (logrus.FieldLogger): custom logger
func NewManager(userCfg map[string]interface{}) (*Manager, error) {
	var err error
	mgr := &Manager{}

	if cfgPathRaw, ok := userCfg["config-file"]; ok {
		if cfgPath, ok := cfgPathRaw.(string); ok {
			err = mgr.initConfig(&cfgPath)
		} else {
			return nil, errors.New("option 'config-file' must be of type string")
		}
	} else {
		err = mgr.initConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	if loggerRaw, ok := userCfg["logger"]; ok {
		if logger, ok := loggerRaw.(logrus.FieldLogger); ok {
			mgr.Logger = logger
		} else {
			return nil, errors.New("option 'logger' must satisfy logrus.FieldLogger")
		}
	} else {
		mgr.Logger = logrus.New()
	}

	if err := mgr.initClient(); err != nil {
		return nil, err
	}
	return mgr, nil
}

func (mgr *Manager) initConfig(cfgPath *string) error {
	// A private viper context just for this manager (so as not to conflict
	// with the importer's usage).
	mgr.Cfg = viper.New()

	mgr.Cfg.SetDefault("region", "cn-hangzhou")
	mgr.Cfg.SetDefault("timeout", 60)
	mgr.Cfg.SetDefault("secure", false)
	mgr.Cfg.SetDefault("internal", false)

	// Order of precedence: ENV, config file, defaults.
	mgr.Cfg.BindEnv("accountId", "FC_ACCOUNT_ID")
	mgr.Cfg.BindEnv("accessKeyId", "ALIBABA_CLOUD_ACCESS_KEY_ID")
	mgr.Cfg.BindEnv("accessKeySecret", "ALIBABA_CLOUD_ACCESS_KEY_SECRET")
	mgr.Cfg.BindEnv("securityToken", "ALIBABA_CLOUD_SECURITY_TOKEN")
	mgr.Cfg.BindEnv("region", "FC_REGION")
	mgr.Cfg.BindEnv("endpoint", "FC_ENDPOINT")

	if cfgPath != nil {
		expanded, err := homedir.Expand(*cfgPath)
		if err != nil {
			return errors.Wrap(err, "Failed to resolve config path")
		}
		mgr.Cfg.SetConfigFile(expanded)
		if err := mgr.Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
		return nil
	}

	// Default search path is ~/fcgo.* then ./configs/fcgo.*
	home, err := homedir.Dir()
	if err == nil {
		mgr.Cfg.AddConfigPath(home)
	}
	mgr.Cfg.AddConfigPath("./configs")
	mgr.Cfg.SetConfigName("fcgo")

	// A missing config file is fine as long as the environment supplies the
	// credentials; any other read error is fatal.
	if err := mgr.Cfg.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return errors.Wrap(err, "Failed to load config")
		}
	}
	return nil
}

func (mgr *Manager) initClient() error {
	client, err := fc.NewClient(fc.Config{
		AccountID:       mgr.Cfg.GetString("accountId"),
		Region:          mgr.Cfg.GetString("region"),
		AccessKeyID:     mgr.Cfg.GetString("accessKeyId"),
		AccessKeySecret: mgr.Cfg.GetString("accessKeySecret"),
		SecurityToken:   mgr.Cfg.GetString("securityToken"),
		Endpoint:        mgr.Cfg.GetString("endpoint"),
		Secure:          mgr.Cfg.GetBool("secure"),
		Internal:        mgr.Cfg.GetBool("internal"),
		Timeout:         time.Duration(mgr.Cfg.GetInt("timeout")) * time.Second,
		Logger:          mgr.Logger.WithField("module", "fc"),
	})
	if err != nil {
		return errors.Wrap(err, "Failed to initialize client")
	}
	mgr.Client = client
	return nil
}
