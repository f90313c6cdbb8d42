package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amoylab/toolshop-datagen/internal/fixture"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	hashCost int

	resolveCmd = &cobra.Command{
		Use:   "resolve <file>...",
		Short: "Resolve the placeholders of API test-data files into request bodies",
		Long: `resolve reads CSV or JSON test-data files and prints one JSON object per
test case with every placeholder replaced: "nominal" becomes the field's
known-good value, "<empty>" an empty string and "repeat(c,n)" n copies of c.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}

	hashPasswordCmd = &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash usable as generator.password_hash",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHashPassword,
	}
)

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	rootCmd.AddCommand(resolveCmd, hashPasswordCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, path := range args {
		cases, err := fixture.Load(path)
		if err != nil {
			return err
		}
		for _, c := range cases {
			r, err := c.Resolve()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	}
	return nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no password given")
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(hash))
	return nil
}
