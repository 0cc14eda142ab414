package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
)

func newGenerateCmd() *cobra.Command {
	var (
		asPDF bool
		file  string
	)
	cmd := &cobra.Command{
		Use:   "gerar",
		Short: "Gera o documento a partir de um bloco de dados e imprime o caminho do arquivo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			block, err := readBlock(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			c, err := loadConfig()
			if err != nil {
				return err
			}
			logger := zap.NewNop()
			if c.Debug {
				if logger, err = newLogger(true); err != nil {
					return err
				}
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := c.MakeConfig()
			if err != nil {
				return err
			}
			if asPDF {
				defer startVips(cfg, logger)()
			}

			gen, err := procuracao.NewGenerator(cfg, c.MakeConverter(logger), logger)
			if err != nil {
				return err
			}
			defer gen.Close()

			generate := gen.GenerateDOCX
			if asPDF {
				generate = gen.GeneratePDF
			}
			result, err := generate(cmd.Context(), block)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return err
		},
	}
	cmd.Flags().BoolVar(&asPDF, "pdf", false, "converte para PDF depois de gerar o DOCX")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "arquivo com o bloco de dados (- para stdin)")
	return cmd
}

func readBlock(stdin io.Reader, file string) (string, error) {
	if file == "-" || file == "" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}
