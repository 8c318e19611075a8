// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package acquire

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/llave"
)

type MockAcquirer struct {
	mock.Mock
}

func (m *MockAcquirer) Acquire(ctx context.Context, account string) (llave.Token, error) {
	args := m.Called(ctx, account)

	return args.Get(0).(llave.Token), args.Error(1)
}
