package main

import "time"

type Config struct {
	ServerURL         string        `env:"PEERCHAT_SERVER_URL,default=ws://localhost:3000/chat"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	DataDir           string        `env:"PEERCHAT_DATA_DIR,required=true"`
	IndexDir          string        `env:"PEERCHAT_INDEX_DIR,required=true"`
	VapidPublicKey    string        `env:"PEERCHAT_VAPID_PUBLIC_KEY"`
	PushEndpoint      string        `env:"PEERCHAT_PUSH_ENDPOINT,default=https://push.peerchat.dev/send"`
	Notifications     string        `env:"PEERCHAT_NOTIFICATIONS,default=default"`
	RememberTTL       time.Duration `env:"PEERCHAT_REMEMBER_TTL,default=168h"`
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
}
