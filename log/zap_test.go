// MIT License
//
// Copyright (c) 2024-2026 Tether Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZap(t *testing.T) {
	t.Run("With Debug log level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)
		require.Equal(t, DebugLevel, logger.LogLevel())

		logger.Debug("test debug")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		require.Equal(t, "test debug", actual)

		buffer.Reset()
		logger.Debugf("hello %s", "world")
		actual, err = extractMessage(buffer.Bytes())
		require.NoError(t, err)
		require.Equal(t, "hello world", actual)
	})

	t.Run("With Info log level debug messages are skipped", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		require.Equal(t, InfoLevel, logger.LogLevel())

		logger.Debug("test debug")
		require.Empty(t, buffer.String())

		logger.Infof("hello %s", "world")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		require.Equal(t, "hello world", actual)
	})

	t.Run("With Error log level info and warn are skipped", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)
		require.Equal(t, ErrorLevel, logger.LogLevel())

		logger.Info("nothing")
		logger.Warn("nothing")
		require.Empty(t, buffer.String())

		logger.Error("broken")
		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		require.Equal(t, "broken", actual)
	})

	t.Run("With Panic log level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(PanicLevel, buffer)
		require.Equal(t, PanicLevel, logger.LogLevel())

		assert.Panics(t, func() {
			logger.Panic("test panic")
		})
		assert.Panics(t, func() {
			logger.Panicf("%s", "test panic")
		})
	})

	t.Run("With the log output", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		outputs := logger.LogOutput()
		require.Len(t, outputs, 1)
		require.IsType(t, buffer, outputs[0])
	})

	t.Run("With the standard logger bridge", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)

		std := logger.StdLogger()
		require.NotNil(t, std)
		std.Print("std logger message")

		actual, err := extractMessage(buffer.Bytes())
		require.NoError(t, err)
		require.Equal(t, "std logger message", actual)
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "PANIC", PanicLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "UNKNOWN", InvalidLevel.String())
	assert.Equal(t, "UNKNOWN", Level(100).String())
}

func TestDiscardLogger(t *testing.T) {
	// no-op methods, called for coverage
	DiscardLogger.Debug("discarded")
	DiscardLogger.Debugf("discarded %s", "msg")
	DiscardLogger.Info("discarded")
	DiscardLogger.Infof("discarded %s", "msg")
	DiscardLogger.Warn("discarded")
	DiscardLogger.Warnf("discarded %s", "msg")
	DiscardLogger.Error("discarded")
	DiscardLogger.Errorf("discarded %s", "msg")

	assert.Equal(t, InvalidLevel, DiscardLogger.LogLevel())
	assert.Len(t, DiscardLogger.LogOutput(), 1)
	require.NotNil(t, DiscardLogger.StdLogger())
}

func extractMessage(bytes []byte) (string, error) {
	// a map container to decode the JSON structure into
	c := make(map[string]json.RawMessage)
	if err := json.Unmarshal(bytes, &c); err != nil {
		return "", err
	}
	for k, v := range c {
		if k == "msg" {
			return strconv.Unquote(string(v))
		}
	}
	return "", nil
}
