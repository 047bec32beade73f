package regcmd

const (
	// ============================================================================
	// reg.exe Sub-commands
	// ============================================================================

	// SubQuery lists keys and values.
	SubQuery = "QUERY"

	// SubAdd creates keys and sets values.
	SubAdd = "ADD"

	// SubDelete removes keys and values.
	SubDelete = "DELETE"

	// ============================================================================
	// reg.exe Switches
	// ============================================================================

	// FlagValueName selects a named value (/v <name>).
	FlagValueName = "/v"

	// FlagDefaultValue selects the key's default (unnamed) value.
	FlagDefaultValue = "/ve"

	// FlagAllValues restricts a delete to values only, leaving subkeys intact.
	FlagAllValues = "/va"

	// FlagType declares the value type on ADD (/t <REG_*>).
	FlagType = "/t"

	// FlagData carries the value payload on ADD (/d <data>).
	FlagData = "/d"

	// FlagForce suppresses the overwrite/delete confirmation prompt.
	FlagForce = "/f"

	// FlagReg32 and FlagReg64 select the mirrored registry view on 64-bit
	// systems. Meaningless on 32-bit hosts; passed through unverified.
	FlagReg32 = "/reg:32"
	FlagReg64 = "/reg:64"

	// ============================================================================
	// Path Syntax
	// ============================================================================

	// Separator delimits key path segments.
	Separator = `\`

	// HostPrefix introduces a remote machine name (\\host\HKLM\...).
	HostPrefix = `\\`
)
