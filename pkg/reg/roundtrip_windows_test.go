//go:build windows

package reg

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip writes values through the live reg.exe and reads them
// back. It touches the real registry (a throwaway key under HKCU) and is
// skipped unless explicitly enabled.
func TestRoundTrip(t *testing.T) {
	if os.Getenv("REGKIT_LIVE_TESTS") == "" {
		t.Skip("set REGKIT_LIVE_TESTS=1 to run tests against the live registry")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	k, err := New(HKCU, fmt.Sprintf(`\Software\regkit_test_%d`, os.Getpid()))
	require.NoError(t, err)

	require.NoError(t, k.Create(ctx))
	defer func() {
		_ = k.DeleteKey(ctx)
	}()

	tests := []struct {
		name string
		typ  RegType
		data string
	}{
		{"StringValue", REG_SZ, "hello world"},
		{"DwordValue", REG_DWORD, "42"},
		{"ExpandValue", REG_EXPAND_SZ, `%SystemRoot%\system32`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, k.SetValue(ctx, tt.name, tt.typ, tt.data))

			v, ok, err := k.Value(ctx, tt.name)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.typ, v.Type)
			if tt.typ == REG_DWORD {
				// The tool re-renders numerics, usually as 0x hex.
				n, err := v.DWORD()
				require.NoError(t, err)
				assert.Equal(t, uint32(42), n)
			} else {
				assert.Equal(t, tt.data, v.Data)
			}
		})
	}

	ok, err := k.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = k.ValueExists(ctx, "StringValue")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, k.DeleteValue(ctx, "StringValue"))
	ok, err = k.ValueExists(ctx, "StringValue")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, k.EraseValues(ctx))
	values, err := k.Values(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, k.DeleteKey(ctx))
	ok, err = k.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
