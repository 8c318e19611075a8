// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package llavefx

import (
	"github.com/xmidt-org/llave"
	"github.com/xmidt-org/llave/auth"
	"go.uber.org/fx"
)

const Module = "llave"

func Provide() fx.Option {
	return fx.Module(
		Module,
		llave.ProvideMetrics(),
		fx.Provide(
			llave.ProvideCredential,
			provideDecorator,
		),
		fx.Invoke(llave.ProvideEagerRefresh),
	)
}

func provideDecorator(credential *llave.Credential) (auth.Decorator, error) {
	return auth.NewSigner(credential)
}
