package regcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   string
	}{
		{"root", Target{Hive: types.HKLM}, `HKLM`},
		{"key", Target{Hive: types.HKCU, Key: `\Software\Vendor`}, `HKCU\Software\Vendor`},
		{
			"remote",
			Target{Host: "fileserver", Hive: types.HKLM, Key: `\Software`},
			`\\fileserver\HKLM\Software`,
		},
		{"remote_root", Target{Host: "pc01", Hive: types.HKU}, `\\pc01\HKU`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Path())
		})
	}
}

func TestQuery(t *testing.T) {
	target := Target{Hive: types.HKLM, Key: `\Software`}
	assert.Equal(t, []string{"QUERY", `HKLM\Software`}, Query(target))

	target.Arch = types.ArchX86
	assert.Equal(t, []string{"QUERY", `HKLM\Software`, "/reg:32"}, Query(target))

	target.Arch = types.ArchX64
	assert.Equal(t, []string{"QUERY", `HKLM\Software`, "/reg:64"}, Query(target))
}

func TestQueryValue(t *testing.T) {
	target := Target{Hive: types.HKCU, Key: `\Software\Vendor`}

	named := QueryValue(target, "Version")
	assert.Equal(t, []string{"QUERY", `HKCU\Software\Vendor`, "/v", "Version"}, named)

	def := QueryValue(target, types.DefaultValue)
	assert.Equal(t, []string{"QUERY", `HKCU\Software\Vendor`, "/ve"}, def)
}

func TestSetValue(t *testing.T) {
	target := Target{Hive: types.HKCU, Key: `\Software\Vendor`}

	named := SetValue(target, "Version", types.REG_SZ, "1.2.3")
	assert.Equal(t, []string{
		"ADD", `HKCU\Software\Vendor`, "/v", "Version",
		"/t", "REG_SZ", "/d", "1.2.3", "/f",
	}, named)
	assert.NotContains(t, named, "/ve")

	def := SetValue(target, types.DefaultValue, types.REG_SZ, "x")
	assert.Equal(t, []string{
		"ADD", `HKCU\Software\Vendor`, "/ve",
		"/t", "REG_SZ", "/d", "x", "/f",
	}, def)
	assert.NotContains(t, def, "/v")
}

func TestDeleteValue(t *testing.T) {
	target := Target{Hive: types.HKCU, Key: `\Software\Vendor`}

	named := DeleteValue(target, "Version")
	assert.Equal(t, []string{"DELETE", `HKCU\Software\Vendor`, "/f", "/v", "Version"}, named)

	def := DeleteValue(target, types.DefaultValue)
	assert.Equal(t, []string{"DELETE", `HKCU\Software\Vendor`, "/f", "/ve"}, def)
}

func TestEraseValuesVersusDeleteKey(t *testing.T) {
	target := Target{Hive: types.HKCU, Key: `\Software\Vendor`}

	// Values-only erase keeps subkeys; whole-key delete does not carry /va.
	assert.Equal(t, []string{"DELETE", `HKCU\Software\Vendor`, "/f", "/va"}, EraseValues(target))
	assert.Equal(t, []string{"DELETE", `HKCU\Software\Vendor`, "/f"}, DeleteKey(target))
}

func TestCreateKey(t *testing.T) {
	target := Target{Hive: types.HKLM, Key: `\Software\Vendor\App`}
	assert.Equal(t, []string{"ADD", `HKLM\Software\Vendor\App`, "/f"}, CreateKey(target))

	target.Arch = types.ArchX64
	assert.Equal(
		t,
		[]string{"ADD", `HKLM\Software\Vendor\App`, "/f", "/reg:64"},
		CreateKey(target),
	)
}
