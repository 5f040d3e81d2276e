package cmds

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	output           string
	channels         []string
	timezone         string
	epgURL           string
	archivePath      string
	skipInvalidTimes bool
)

func NewFilterCLI() *cobra.Command {
	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "下载EPG，保留指定频道未来24小时的节目单，并写入新的XMLTV文件。",
		RunE: func(cmd *cobra.Command, args []string) error {
			// L()：获取全局logger
			logger := zap.L()

			// 命令行参数优先于配置文件
			flags := cmd.Flags()
			if flags.Changed("output") {
				conf.Output = output
			}
			if flags.Changed("channel") {
				conf.Channels = channels
			}
			if flags.Changed("timezone") {
				conf.Timezone = timezone
			}
			if flags.Changed("url") {
				conf.URL = epgURL
			}
			if flags.Changed("archive") {
				conf.ArchivePath = archivePath
			}
			if flags.Changed("skip-invalid-times") {
				conf.SkipInvalidTimes = skipInvalidTimes
			}

			// 校验配置文件
			if err := conf.Validate(); err != nil {
				return err
			}

			result, err := newEPGClient().Generate(cmd.Context(), conf.Options())
			if err != nil {
				logger.Error("Failed to generate the filtered EPG.", zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Filtered EPG saved to %s\n", result.Output)
			return nil
		},
	}

	filterCmd.Flags().StringVarP(&output, "output", "o", "", "过滤后的EPG文件路径，e.g `diaLK.xml`。")
	filterCmd.Flags().StringSliceVarP(&channels, "channel", "c", nil, "需要保留的频道名称，可重复或用逗号分隔，e.g `ITN,Hiru`。")
	filterCmd.Flags().StringVarP(&timezone, "timezone", "t", "", "计算24小时窗口的IANA时区，e.g `Pacific/Auckland`。")
	filterCmd.Flags().StringVarP(&epgURL, "url", "u", "", "gzip压缩的XMLTV文件地址。")
	filterCmd.Flags().StringVarP(&archivePath, "archive", "a", "", "保存下载的原始压缩文件的路径，为空则不保存。")
	filterCmd.Flags().BoolVar(&skipInvalidTimes, "skip-invalid-times", false, "跳过时间格式错误的节目，而不是中止。")

	return filterCmd
}
