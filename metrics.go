// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package llave

// Names
const (
	TokenRefreshesTotalCounterName = "token_refreshes_total"
	TokenRefreshesTotalCounterHelp = "Counter for the number of token refreshes (and their success/failure outcomes) performed by a credential."
)

// Labels
const (
	OutcomeLabel = "outcome"
)

// Label Values
const (
	SuccessOutcome = "success"
	FailureOutcome = "failure"
)
