// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

package captcha

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/freroxx/residence-yasmina/internal/captcha")
