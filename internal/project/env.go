package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFile is the build environment file read by just.config.ts.
const EnvFile = ".env"

// EnvProjectNameKey names the pack folder the build scripts copy.
const EnvProjectNameKey = "PROJECT_NAME"

// EnvProjectName returns PROJECT_NAME from root/.env. A missing file or
// key yields "" and no error.
func EnvProjectName(root string) (string, error) {
	env, err := godotenv.Read(filepath.Join(root, EnvFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", EnvFile, err)
	}
	return env[EnvProjectNameKey], nil
}

// WriteEnv writes root/.env with PROJECT_NAME set to the mod name, keeping
// any other variables already in the file.
func WriteEnv(root, modName string) error {
	path := filepath.Join(root, EnvFile)
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", EnvFile, err)
		}
		env = map[string]string{}
	}
	env[EnvProjectNameKey] = modName
	if err := godotenv.Write(env, path); err != nil {
		return fmt.Errorf("writing %s: %w", EnvFile, err)
	}
	return nil
}
