package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"tankwatch/internal/domain/constants"
	"tankwatch/internal/domain/service"
	"tankwatch/internal/errors"

	"github.com/spf13/cobra"
)

func qrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Encode or decode device provisioning QR codes",
	}
	cmd.AddCommand(qrEncodeCmd())
	cmd.AddCommand(qrDecodeCmd())

	return cmd
}

func qrEncodeCmd() *cobra.Command {
	var hardwareID, apiKey, out string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Render a provisioning QR code as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			var qr service.QRCodeService

			return run(func(_ context.Context) error {
				png, err := qr.GenerateProvisioningQR(hardwareID, apiKey)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, png, 0o600); err != nil {
					return errors.Wrapf(err, "write %s", out)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(png))

				return nil
			}, &qr)
		},
	}
	cmd.Flags().StringVar(&hardwareID, "hardware-id", "", "Device hardware id")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Device secret")
	cmd.Flags().StringVar(&out, "out", "provisioning.png", "Output PNG path")
	_ = cmd.MarkFlagRequired("hardware-id")
	_ = cmd.MarkFlagRequired("api-key")

	return cmd
}

func qrDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <payload>",
		Short: "Print the hardware id and secret of a provisioning payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var qr service.QRCodeService

			return run(func(_ context.Context) error {
				hardwareID, apiKey, err := qr.ParseProvisioningQR(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "hardwareId=%s apiKey=%s\n", hardwareID, apiKey)

				return nil
			}, &qr)
		},
	}
}

func validateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return errors.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
	}

	return nil
}
