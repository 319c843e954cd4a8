package logger

import (
	"encoding/json"

	"go.uber.org/zap"
)

var configFake = []byte(` {
		"level": "debug",
		"encoding": "json",
		"outputPaths": ["stdout"],
	    "errorOutputPaths": ["stderr"],
	    "initialFields": {"foo": "bar"},
	    "encoderConfig": {
	        "messageKey": "m",
	        "levelKey": "l",
	        "levelEncoder": "lowercase"
	    }
	}`)

// CreateFakeLogger installs a debug logger writing json to stdout.
func CreateFakeLogger() error {
	cfg := zap.Config{}
	if err := json.Unmarshal(configFake, &cfg); err != nil {
		return err
	}
	return CreateLogger(cfg)
}
