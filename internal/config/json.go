// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Homeserver struct {
		BaseURL          string   `json:"base_url"`
		UserID           string   `json:"user_id"`
		DeviceID         string   `json:"device_id"`
		RequestTimeout   Duration `json:"request_timeout"`
		SyncTimeout      Duration `json:"sync_timeout"`
		InitialSyncLimit int      `json:"initial_sync_limit"`
		SyncRetryDelay   Duration `json:"sync_retry_delay"`
	} `json:"homeserver,omitempty"`

	Engine struct {
		DecryptionDebounce Duration `json:"decryption_debounce"`
		RoomWaitTimeout    Duration `json:"room_wait_timeout"`
		RoomWaitInterval   Duration `json:"room_wait_interval"`
		TypingTTL          Duration `json:"typing_ttl"`
		TypingIdle         Duration `json:"typing_idle"`
		ReceiptTimeout     Duration `json:"receipt_timeout"`
	} `json:"engine,omitempty"`

	Log struct {
		FilePath string `json:"file"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	hs, eng := jsonCfg.Homeserver, jsonCfg.Engine
	cfg := &StructuredConfig{
		Homeserver: Homeserver{
			BaseURL:          hs.BaseURL,
			UserID:           hs.UserID,
			DeviceID:         hs.DeviceID,
			RequestTimeout:   time.Duration(hs.RequestTimeout),
			SyncTimeout:      time.Duration(hs.SyncTimeout),
			InitialSyncLimit: hs.InitialSyncLimit,
			SyncRetryDelay:   time.Duration(hs.SyncRetryDelay),
		},
		Engine: Engine{
			DecryptionDebounce: time.Duration(eng.DecryptionDebounce),
			RoomWaitTimeout:    time.Duration(eng.RoomWaitTimeout),
			RoomWaitInterval:   time.Duration(eng.RoomWaitInterval),
			TypingTTL:          time.Duration(eng.TypingTTL),
			TypingIdle:         time.Duration(eng.TypingIdle),
			ReceiptTimeout:     time.Duration(eng.ReceiptTimeout),
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
