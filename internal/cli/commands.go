package cli

import (
	"fmt"
	"strconv"
	"strings"

	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newCouponsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "coupons",
		Short: "List the coupon catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			coupons := a.catalog.Coupons()
			lines := lo.Map(coupons, func(c model.Coupon, _ int) string {
				return fmt.Sprintf("%s\t%s", c.Code, formatFloat(c.Discount))
			})
			return render(cmd, strings.Join(lines, "\n"), coupons)
		},
	}
}

func newDiscountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "discount PRICE CODE",
		Short: "Apply a coupon code to a price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price := rules.Infer(args[0])
			code := rules.String(args[1])

			discounted, err := a.catalog.CalculateDiscountValue(price, code)
			if err != nil {
				return err
			}

			p := price.Num().MustGet()
			return render(cmd, formatFloat(discounted), model.DiscountResponse{
				Price:           p,
				Code:            args[1],
				DiscountedPrice: discounted,
				Applied:         a.catalog.Lookup(args[1]).IsPresent(),
			})
		},
	}
}

func newValidateUserCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-user USERNAME AGE",
		Short: "Validate a username and age pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := rules.ValidateUserInput(rules.String(args[0]), rules.Infer(args[1]))

			a.logger.Debug().Strs("failures", result.Failures()).Msg("user validated")

			if err := render(cmd, result.Message(), model.UserValidationResponse{
				Valid:    result.Valid(),
				Message:  result.Message(),
				Failures: result.Failures(),
			}); err != nil {
				return err
			}
			return result.Err()
		},
	}
}

func newInRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "in-range VALUE MIN MAX",
		Short: "Check whether MIN <= VALUE <= MAX",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]float64, len(args))
			for i, name := range []string{"value", "min", "max"} {
				f, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return model.NewDomainError(model.ErrCodeInvalidQuery,
						fmt.Sprintf("Invalid %s: %q is not a number", name, args[i]))
				}
				nums[i] = f
			}

			inRange := rules.IsPriceInRange(nums[0], nums[1], nums[2])
			return render(cmd, strconv.FormatBool(inRange), model.PriceRangeResponse{
				Value:   nums[0],
				Min:     nums[1],
				Max:     nums[2],
				InRange: inRange,
			})
		},
	}
}

func newUsernameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "username NAME",
		Short: "Check a username's length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minLength := lo.Must(cmd.Flags().GetInt("min"))
			maxLength := lo.Must(cmd.Flags().GetInt("max"))

			valid := rules.IsValidUsername(rules.String(args[0]), rules.WithLengthBounds(minLength, maxLength))
			return render(cmd, strconv.FormatBool(valid), model.UsernameValidationResponse{
				Valid:     valid,
				MinLength: minLength,
				MaxLength: maxLength,
			})
		},
	}

	cmd.Flags().Int("min", rules.DefaultUsernameMinLength, "Minimum length")
	cmd.Flags().Int("max", rules.DefaultUsernameMaxLength, "Maximum length")

	return cmd
}

func newCanDriveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "can-drive AGE COUNTRY",
		Short: "Check whether AGE meets the minimum driving age of COUNTRY",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return model.NewDomainError(model.ErrCodeInvalidQuery,
					fmt.Sprintf("Invalid age: %q is not a number", args[0]))
			}

			canDrive, err := a.drivingAges.CanDrive(age, args[1])
			if err != nil {
				return err
			}

			minimum, _ := a.drivingAges.MinimumAge(args[1])
			return render(cmd, strconv.FormatBool(canDrive), model.DrivingEligibilityResponse{
				CountryCode: args[1],
				Age:         age,
				MinimumAge:  minimum,
				CanDrive:    canDrive,
			})
		},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
