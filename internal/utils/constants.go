package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// LoggerInitializationFailedMessageFormat reports a failed logger setup.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal execution errors.
const ApplicationExecutionFailedMessage = "application execution failed"

// ConfigFileName is the name of the local configuration file.
const ConfigFileName = ".ftree.yaml"

// GlobalConfigDirectoryName is the directory under the user configuration
// root that holds the global configuration file.
const GlobalConfigDirectoryName = "ftree"

// GlobalConfigFileName is the name of the global configuration file.
const GlobalConfigFileName = "config.yaml"
