package constants

import "strings"

// EnvPrefix is the prefix shared by every environment variable read by the services.
var EnvPrefix = strings.ToUpper(strings.ReplaceAll(ProjectName, "-", "_"))

// ConfigFileType is the format of the optional CLI configuration file.
const ConfigFileType = "yaml"

// DefaultLogLevel is used when no log level is configured.
const DefaultLogLevel = "INFO"
