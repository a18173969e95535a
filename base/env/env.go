package env

import (
	"os"
)

// InstanceName identifies the running instance, example: pricebot-7d9f8c6b5-x2k4q
func InstanceName() string {
	if name := os.Getenv("PODNAME"); len(name) > 0 {
		return name
	}
	name, _ := os.Hostname()
	return name
}

// EnvName example: production
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: pricebot
func AppName() string {
	if name := os.Getenv("APP_NAME"); len(name) > 0 {
		return name
	}
	return "pricebot"
}
