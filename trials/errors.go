// SPDX-License-Identifier: MIT

package trials

import "errors"

// ErrBadConfig indicates a Config rejected by Validate.
var ErrBadConfig = errors.New("trials: invalid config")
