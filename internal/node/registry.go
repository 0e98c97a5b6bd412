package node

import (
	"github.com/foxtail/fxt/internal/card/mock"
	"github.com/foxtail/fxt/internal/component/analog"
	"github.com/foxtail/fxt/internal/component/controller"
	"github.com/foxtail/fxt/internal/component/digital"
	"github.com/foxtail/fxt/internal/point"
)

// RegisterStandardFactories registers every Point/Card/Component factory
// FoxTail ships out of the box (spec §4.7 step a). A host that needs a
// custom Point/Card/Component type registers it separately before Build.
func RegisterStandardFactories(b *Builder) {
	registerStandardPointFactories(b)
	registerStandardCardFactories(b)
	registerStandardComponentFactories(b)
}

func registerStandardPointFactories(b *Builder) {
	b.RegisterPointFactory(point.NewScalarFactory[bool]("fxt.point.bool", "Fxt::Point::Bool"))
	b.RegisterPointFactory(point.NewScalarFactory[int8]("fxt.point.int8", "Fxt::Point::Int8"))
	b.RegisterPointFactory(point.NewScalarFactory[int16]("fxt.point.int16", "Fxt::Point::Int16"))
	b.RegisterPointFactory(point.NewScalarFactory[int32]("fxt.point.int32", "Fxt::Point::Int32"))
	b.RegisterPointFactory(point.NewScalarFactory[int64]("fxt.point.int64", "Fxt::Point::Int64"))
	b.RegisterPointFactory(point.NewScalarFactory[uint8]("fxt.point.uint8", "Fxt::Point::Uint8"))
	b.RegisterPointFactory(point.NewScalarFactory[uint16]("fxt.point.uint16", "Fxt::Point::Uint16"))
	b.RegisterPointFactory(point.NewScalarFactory[uint32]("fxt.point.uint32", "Fxt::Point::Uint32"))
	b.RegisterPointFactory(point.NewScalarFactory[uint64]("fxt.point.uint64", "Fxt::Point::Uint64"))
	b.RegisterPointFactory(point.NewScalarFactory[float32]("fxt.point.float32", "Fxt::Point::Float32"))
	b.RegisterPointFactory(point.NewScalarFactory[float64]("fxt.point.float64", "Fxt::Point::Float64"))

	b.RegisterPointFactory(point.NewArrayFactory[int32]("fxt.point.array.int32", "Fxt::Point::ArrayInt32"))
	b.RegisterPointFactory(point.NewArrayFactory[uint8]("fxt.point.array.uint8", "Fxt::Point::ArrayUint8"))
	b.RegisterPointFactory(point.NewArrayFactory[float32]("fxt.point.array.float32", "Fxt::Point::ArrayFloat32"))

	b.RegisterPointFactory(point.NewStringFactory("fxt.point.string", "Fxt::Point::String"))
}

func registerStandardCardFactories(b *Builder) {
	b.RegisterCardFactory(mock.Digital8Factory{})
	b.RegisterCardFactory(mock.Analog4Factory{})
}

func registerStandardComponentFactories(b *Builder) {
	b.RegisterComponentFactory(digital.NewAndFactory("fxt.component.digital.and"))
	b.RegisterComponentFactory(digital.NewOrFactory("fxt.component.digital.or"))
	b.RegisterComponentFactory(digital.NewNotFactory("fxt.component.digital.not"))
	b.RegisterComponentFactory(digital.NewDemuxFactory("fxt.component.digital.demux8"))
	b.RegisterComponentFactory(digital.NewMuxFactory[uint8]("fxt.component.digital.mux8", "fxt.point.uint8", 8))
	b.RegisterComponentFactory(digital.NewMuxFactory[uint16]("fxt.component.digital.mux16", "fxt.point.uint16", 16))

	b.RegisterComponentFactory(analog.NewScalerFactory[uint16, float32](
		"fxt.component.analog.scaler.u16_f32", "fxt.point.uint16", "fxt.point.float32"))
	b.RegisterComponentFactory(analog.NewScalerFactory[float64, float64](
		"fxt.component.analog.scaler.f64_f64", "fxt.point.float64", "fxt.point.float64"))
	b.RegisterComponentFactory(analog.NewScalerFactory[uint16, uint8](
		"fxt.component.analog.scaler.u16_u8", "fxt.point.uint16", "fxt.point.uint8"))

	b.RegisterComponentFactory(controller.NewOnOffFactory("fxt.component.controller.onoff", "fxt.point.float64"))
}
