package cli

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rulebook/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coupons.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return path
}

func TestCouponsCommand(t *testing.T) {
	out, err := execute(t, "coupons")

	require.NoError(t, err)
	assert.Equal(t, "SAVE10\t0.1\nSAVE20\t0.2\n", out)
}

func TestCouponsCommand_JSON(t *testing.T) {
	out, err := execute(t, "coupons", "--json")
	require.NoError(t, err)

	var coupons []model.Coupon
	require.NoError(t, json.Unmarshal([]byte(out), &coupons))
	assert.Equal(t, []model.Coupon{
		{Code: "SAVE10", Discount: 0.10},
		{Code: "SAVE20", Discount: 0.20},
	}, coupons)
}

func TestCouponsCommand_WithCatalogFile(t *testing.T) {
	path := writeCatalog(t, "# seasonal\nWINTER,0.3\n\nSAVE10,0.15\n")

	out, err := execute(t, "coupons", "--coupons-file", path)

	require.NoError(t, err)
	assert.Equal(t, "SAVE10\t0.15\nSAVE20\t0.2\nWINTER\t0.3\n", out)
}

func TestCouponsCommand_MissingCatalogFile(t *testing.T) {
	_, err := execute(t, "coupons", "--coupons-file", filepath.Join(t.TempDir(), "missing.gz"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load coupon file")
}

func TestDiscountCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    string
		expectError bool
		errorMsg    string
	}{
		{name: "SAVE10", args: []string{"10", "SAVE10"}, expected: "9\n"},
		{name: "SAVE20", args: []string{"10", "SAVE20"}, expected: "8\n"},
		{name: "Unknown code", args: []string{"10", "INVALID"}, expected: "10\n"},
		{name: "Zero price", args: []string{"0", "SAVE10"}, expected: "0\n"},
		{name: "Non-numeric price", args: []string{"ten", "SAVE10"}, expectError: true, errorMsg: "Invalid price"},
		{name: "Negative price", args: []string{"-5", "SAVE10"}, expectError: true, errorMsg: "Invalid price"},
		{name: "Null price", args: []string{"null", "SAVE10"}, expectError: true, errorMsg: "Invalid price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"discount", "--"}, tt.args...)...)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestDiscountCommand_WrongArgCount(t *testing.T) {
	_, err := execute(t, "discount", "10")
	assert.Error(t, err)
}

func TestValidateUserCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    string
		expectError bool
	}{
		{name: "Valid", args: []string{"mosh", "42"}, expected: "Validation successful\n"},
		{name: "Short username", args: []string{"ab", "42"}, expected: "Invalid username\n", expectError: true},
		{name: "Young", args: []string{"mosh", "17"}, expected: "Invalid age\n", expectError: true},
		{name: "Both invalid", args: []string{"ab", "old"}, expected: "Invalid username, Invalid age\n", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"validate-user"}, tt.args...)...)

			assert.Equal(t, tt.expected, out)
			if tt.expectError {
				var domainErr *model.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, model.ErrCodeInvalidUserInput, domainErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInRangeCommand(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{args: []string{"-10", "0", "100"}, expected: "false\n"},
		{args: []string{"0", "0", "100"}, expected: "true\n"},
		{args: []string{"50", "0", "100"}, expected: "true\n"},
		{args: []string{"100", "0", "100"}, expected: "true\n"},
		{args: []string{"200", "0", "100"}, expected: "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			out, err := execute(t, append([]string{"in-range", "--"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("Non-numeric bound", func(t *testing.T) {
		_, err := execute(t, "in-range", "1", "low", "100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `Invalid min: "low"`)
	})
}

func TestUsernameCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Four characters", args: []string{"abcd"}, expected: "false\n"},
		{name: "Five characters", args: []string{"abcde"}, expected: "true\n"},
		{name: "Fifteen characters", args: []string{"abcdefghijklmno"}, expected: "true\n"},
		{name: "Sixteen characters", args: []string{"abcdefghijklmnop"}, expected: "false\n"},
		{name: "Custom bounds", args: []string{"ab", "--min", "1", "--max", "2"}, expected: "true\n"},
		{name: "Multibyte counted by character", args: []string{"ñandú"}, expected: "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"username"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCanDriveCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    string
		expectError bool
		errorMsg    string
	}{
		{name: "US 15", args: []string{"15", "US"}, expected: "false\n"},
		{name: "US 16", args: []string{"16", "US"}, expected: "true\n"},
		{name: "UK 16", args: []string{"16", "UK"}, expected: "false\n"},
		{name: "UK 17", args: []string{"17", "UK"}, expected: "true\n"},
		{name: "Unknown country", args: []string{"20", "EG"}, expectError: true, errorMsg: "Invalid country code"},
		{name: "Non-numeric age", args: []string{"old", "US"}, expectError: true, errorMsg: `Invalid age: "old" is not a number`},
		{name: "Extra country from flag", args: []string{"18", "DE", "--driving-age", "DE=18"}, expected: "true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"can-drive"}, tt.args...)...)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCanDriveCommand_JSON(t *testing.T) {
	out, err := execute(t, "can-drive", "17", "UK", "--json")
	require.NoError(t, err)

	var resp model.DrivingEligibilityResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, model.DrivingEligibilityResponse{
		CountryCode: "UK", Age: 17, MinimumAge: 17, CanDrive: true,
	}, resp)
}

func TestDrivingAgeFlag_Invalid(t *testing.T) {
	_, err := execute(t, "can-drive", "18", "DE", "--driving-age", "DE=-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidDrivingAge)
}
