package cmds

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/anilwee/epgLK/internal/app/config"
	"github.com/anilwee/epgLK/internal/app/epg"
	"github.com/anilwee/epgLK/internal/pkg/logging"
	"github.com/anilwee/epgLK/internal/pkg/util"
	"github.com/spf13/cobra"
)

var (
	cfgFile string

	conf *config.Config
)

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "epglk",
		Short:         "按频道和时间窗口过滤XMLTV节目单",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	rootCmd.AddCommand(NewFilterCLI())
	rootCmd.AddCommand(NewServeCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML配置文件的路径")

	return rootCmd
}

// initConfig 初始化配置文件和日志
func initConfig() error {
	var err error
	var fPath string

	if cfgFile != "" {
		// 使用命令参数中的配置文件
		fPath = cfgFile
	} else {
		cfgHome, err := util.GetCurrentAbPathByExecutable()
		if err != nil {
			return err
		}

		fPath = filepath.Join(cfgHome, "config.yml")

		// 写入缺省配置文件
		if _, err = os.Stat(fPath); os.IsNotExist(err) {
			if err = config.CreateDefaultCfg(fPath); err != nil {
				return err
			}
		}
	}

	// 读取配置文件
	conf, err = config.Load(fPath)
	if err != nil {
		return err
	}

	logging.InitLogger(conf.Log)
	return nil
}

// newEPGClient 根据配置创建EPG客户端
func newEPGClient() *epg.Client {
	return epg.NewClient(&http.Client{
		Timeout: conf.Timeout,
	}, conf.UserAgent)
}
