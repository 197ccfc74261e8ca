package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "unitgen"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	outputFlagName       = "output"
	ignoreFlagName       = "ignore"
	verboseFlagName      = "verbose"
	generatedDirFlagName = "generated-dir"
	noLLMFlagName        = "no-llm"
	noJestFlagName       = "no-jest"
	modelFlagName        = "model"
	temperatureFlagName  = "temperature"
	jestConfigFlagName   = "jest-config"
	formatFlagName       = "format"

	ignoreConfigKey          = "paths.ignore"
	generatedDirConfigKey    = "generated.dir"
	llmEnabledKey            = "llm.enabled"
	llmEndpointKey           = "llm.endpoint"
	llmModelKey              = "llm.model"
	llmTemperatureKey        = "llm.temperature"
	llmTimeoutKey            = "llm.timeout"
	llmRatePerMinuteKey      = "llm.rate_per_minute"
	llmCacheSizeKey          = "llm.cache_size"
	jestEnabledKey           = "jest.enabled"
	jestConfigKey            = "jest.config"
	jestTimeoutKey           = "jest.timeout"
	populatedFieldsConfigKey = "sanitizer.populated_fields"

	defaultReportsDir      = "output"
	defaultGeneratedDir    = "tests/generated"
	defaultLLMEnabled      = true
	defaultLLMModel        = "qwen2.5:1.5b"
	defaultLLMTemperature  = 0.2
	defaultLLMTimeout      = 120 * time.Second
	defaultLLMRate         = 0
	defaultLLMCacheSize    = 128
	defaultJestEnabled     = true
	defaultJestConfig      = "jest.config.js"
	defaultJestTimeout     = 10 * time.Minute
	defaultPlanFormat      = "text"
	defaultPopulatedFields = "id"

	envPrefix = "UNITGEN"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".unitgen.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	// Values from .env feed AutomaticEnv below; real environment wins.
	_ = godotenv.Load(filepath.Join(configFolderPath, dotEnvFileName))

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(ignoreConfigKey, domain.DefaultIgnoreDirs)
	viper.SetDefault(generatedDirConfigKey, defaultGeneratedDir)
	viper.SetDefault(populatedFieldsConfigKey, []string{defaultPopulatedFields})

	viper.SetDefault(llmEnabledKey, defaultLLMEnabled)
	viper.SetDefault(llmEndpointKey, adapter.DefaultOllamaEndpoint)
	viper.SetDefault(llmModelKey, defaultLLMModel)
	viper.SetDefault(llmTemperatureKey, defaultLLMTemperature)
	viper.SetDefault(llmTimeoutKey, int64(defaultLLMTimeout.Seconds()))
	viper.SetDefault(llmRatePerMinuteKey, defaultLLMRate)
	viper.SetDefault(llmCacheSizeKey, defaultLLMCacheSize)

	viper.SetDefault(jestEnabledKey, defaultJestEnabled)
	viper.SetDefault(jestConfigKey, defaultJestConfig)
	viper.SetDefault(jestTimeoutKey, int64(defaultJestTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

var (
	argsValidator     *validator.Validate
	argsValidatorOnce sync.Once
)

// validateArgs checks workflow arguments against their struct tags.
func validateArgs(args any) error {
	argsValidatorOnce.Do(func() {
		argsValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := argsValidator.Struct(args); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}

			return fmt.Errorf("invalid arguments: %s", strings.Join(fields, ", "))
		}

		return fmt.Errorf("invalid arguments: %w", err)
	}

	return nil
}

func secondsKey(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Second
}
