// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package llave

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnmarshalJSON(t *testing.T) {
	type test struct {
		RenewalMargin CustomDuration
	}
	tests := []struct {
		description      string
		input            []byte
		expectedDuration CustomDuration
		errExpected      bool
	}{
		{
			description:      "Int success",
			input:            []byte(`{"renewalMargin":270}`),
			expectedDuration: CustomDuration(270 * time.Second),
		},
		{
			description:      "String success",
			input:            []byte(`{"renewalMargin":"4m30s"}`),
			expectedDuration: CustomDuration(270 * time.Second),
		},
		{
			description: "String failure",
			input:       []byte(`{"renewalMargin":"2r"}`),
			errExpected: true,
		},
		{
			description: "Object failure",
			input:       []byte(`{"renewalMargin":{"key":"val"}}`),
			errExpected: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert := assert.New(t)
			cd := test{}
			err := json.Unmarshal(tc.input, &cd)
			assert.Equal(tc.expectedDuration, cd.RenewalMargin)
			if !tc.errExpected {
				assert.NoError(err)
				return
			}
			assert.Error(err)
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	type test struct {
		RenewalMargin CustomDuration
	}
	tests := []struct {
		description    string
		input          test
		expectedOutput []byte
	}{
		{
			description:    "Seconds",
			input:          test{RenewalMargin: CustomDuration(50 * time.Second)},
			expectedOutput: []byte(`{"RenewalMargin":"50s"}`),
		},
		{
			description:    "Minutes",
			input:          test{RenewalMargin: CustomDuration(270 * time.Second)},
			expectedOutput: []byte(`{"RenewalMargin":"4m30s"}`),
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert := assert.New(t)
			output, err := json.Marshal(tc.input)
			assert.Equal(tc.expectedOutput, output)
			assert.NoError(err)
		})
	}
}
