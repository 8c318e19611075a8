// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package llave

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockAcquirer struct {
	mock.Mock
}

func (m *mockAcquirer) Acquire(ctx context.Context, account string) (Token, error) {
	args := m.Called(ctx, account)

	return args.Get(0).(Token), args.Error(1)
}
