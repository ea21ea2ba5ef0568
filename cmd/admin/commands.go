package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/bdas-dva/retail-api/internal/application/dto"
	"github.com/bdas-dva/retail-api/internal/application/usecase"
)

type employeeOpener func(ctx context.Context) (*usecase.EmployeeUseCase, func(), error)

func newRootCommand(open employeeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "retail-admin",
		Short:         "Maintenance tasks for the retail database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSalaryIndexCommand(open),
		newAverageSalaryCommand(open),
		newSalaryReportCommand(open),
		newHashPasswordCommand(),
	)
	return root
}

func newSalaryIndexCommand(open employeeOpener) *cobra.Command {
	var minPct, maxPct string
	cmd := &cobra.Command{
		Use:   "salary-index",
		Short: "Raise every salary by a percentage picked from [min, max]",
		Example: `  retail-admin salary-index --min 2 --max 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lo, err := decimal.NewFromString(minPct)
			if err != nil {
				return fmt.Errorf("--min: %w", err)
			}
			hi, err := decimal.NewFromString(maxPct)
			if err != nil {
				return fmt.Errorf("--max: %w", err)
			}
			uc, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.ApplySalaryIndexation(cmd.Context(), dto.SalaryIndexationRequest{
				MinPercentage: &lo,
				MaxPercentage: &hi,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Result)
			return nil
		},
	}
	cmd.Flags().StringVar(&minPct, "min", "", "lowest raise in percent")
	cmd.Flags().StringVar(&maxPct, "max", "", "highest raise in percent")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func newAverageSalaryCommand(open employeeOpener) *cobra.Command {
	var id int64
	var viaProcedure bool
	cmd := &cobra.Command{
		Use:   "avg-salary",
		Short: "Print the average salary of an employee's subordinates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			avg := uc.AverageSubordinateSalary
			if viaProcedure {
				avg = uc.AverageSubordinateSalaryProcedure
			}
			out, err := avg(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.AverageSalary.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "employee id")
	cmd.Flags().BoolVar(&viaProcedure, "procedure", false, "let the database compute the average")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newSalaryReportCommand(open employeeOpener) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "salary-report",
		Short: "Write the salary overview PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			body, filename, err := uc.SalaryReportPDF(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "target file (default mzdy-<date>.pdf)")
	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash usable in the user table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
