package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// InitZipkinTracer 没有配置 trace.zipkin.endpoint 时只在本地采样
func InitZipkinTracer() *trace.TracerProvider {
	type Config struct {
		Endpoint    string `yaml:"endpoint"`
		ServiceName string `yaml:"serviceName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("trace.zipkin", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "ride-notification"
	}
	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		panic(err)
	}
	opts := []trace.TracerProviderOption{trace.WithResource(res)}
	if cfg.Endpoint != "" {
		exporter, err := zipkin.New(cfg.Endpoint)
		if err != nil {
			panic(err)
		}
		opts = append(opts, trace.WithBatcher(exporter))
	}
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp
}
