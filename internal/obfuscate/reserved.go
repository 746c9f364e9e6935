package obfuscate

// builtinReserved lists identifiers that must never be renamed: every C
// keyword, the libc symbols an obfuscated program still has to link against,
// and the entry point.
var builtinReserved = map[string]bool{
	// C keywords
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "int": true, "long": true, "register": true, "return": true,
	"short": true, "signed": true, "sizeof": true, "static": true, "struct": true,
	"switch": true, "typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,

	// Standard library
	"printf": true, "scanf": true, "malloc": true, "free": true, "strlen": true,
	"strcpy": true, "strcmp": true, "memcpy": true, "fopen": true, "fclose": true,
	"fread": true, "fwrite": true, "exit": true, "NULL": true, "stdin": true,
	"stdout": true, "stderr": true,

	// Entry point
	"main": true,
}

// reservedSet returns the builtin reserved set extended with extra names.
func reservedSet(extra []string) map[string]bool {
	if len(extra) == 0 {
		return builtinReserved
	}
	set := make(map[string]bool, len(builtinReserved)+len(extra))
	for name := range builtinReserved {
		set[name] = true
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}
