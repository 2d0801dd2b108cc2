// Package config resolves the active sanitization policy from the
// process environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// behind two layers: a small generic loader for any annotated struct, and
// Policy, which assembles a ready sanitizer.Config from SHIELDANTIC_*
// variables.
//
// # Usage
//
// The common path is a single call:
//
//	cfg, err := config.Policy()
//	if err != nil {
//	    log.Fatalf("resolving policy: %v", err)
//	}
//	v, err := sheildantic.New[CreateUser](cfg)
//
// Policy starts from sanitizer.DefaultConfig, loads a YAML policy file
// when SHIELDANTIC_POLICY_FILE points at one, then applies explicit
// variable overrides on top:
//
//	SHIELDANTIC_POLICY_FILE=./policy.yaml
//	SHIELDANTIC_ALLOWED_TAGS=b,i,em,strong
//	SHIELDANTIC_URL_SCHEMES=https
//	SHIELDANTIC_LINK_REL="noopener noreferrer"
//	SHIELDANTIC_ALLOW_COMMENTS=false
//	SHIELDANTIC_MAX_FIELD_SIZE=2048
//
// A `.env` file in the working directory is read once, best effort,
// before the first parse.
//
// # Custom structs
//
// Load parses the environment into any struct with `env` tags, for
// applications that carry their own settings alongside the policy:
//
//	type AppConfig struct {
//	    Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var app AppConfig
//	if err := config.Load(&app); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Sentinel errors compare with `errors.Is`:
//
//   - `ErrParsingConfig`: env vars could not be parsed into the struct.
//   - `ErrInvalidPolicyFile`: the policy file could not be read or parsed.
//   - `ErrNilPointer`: nil pointer passed to `Load`/`MustLoad`.
package config
