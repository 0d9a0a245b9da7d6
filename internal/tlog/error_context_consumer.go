package tlog

import "github.com/sirkon/errors"

// ctxConsumer собирает структурированный контекст ошибки для отрисовки.
type ctxConsumer struct {
	vars []contextVar
}

type contextVar struct {
	name  string
	value any
}

func (c *ctxConsumer) add(name string, value any) {
	c.vars = append(c.vars, contextVar{
		name:  name,
		value: value,
	})
}

func (c *ctxConsumer) Bool(name string, value bool)       { c.add(name, value) }
func (c *ctxConsumer) Int(name string, value int)         { c.add(name, value) }
func (c *ctxConsumer) Int8(name string, value int8)       { c.add(name, value) }
func (c *ctxConsumer) Int16(name string, value int16)     { c.add(name, value) }
func (c *ctxConsumer) Int32(name string, value int32)     { c.add(name, value) }
func (c *ctxConsumer) Int64(name string, value int64)     { c.add(name, value) }
func (c *ctxConsumer) Uint(name string, value uint)       { c.add(name, value) }
func (c *ctxConsumer) Uint8(name string, value uint8)     { c.add(name, value) }
func (c *ctxConsumer) Uint16(name string, value uint16)   { c.add(name, value) }
func (c *ctxConsumer) Uint32(name string, value uint32)   { c.add(name, value) }
func (c *ctxConsumer) Uint64(name string, value uint64)   { c.add(name, value) }
func (c *ctxConsumer) Float32(name string, value float32) { c.add(name, value) }
func (c *ctxConsumer) Float64(name string, value float64) { c.add(name, value) }
func (c *ctxConsumer) String(name string, value string)   { c.add(name, value) }
func (c *ctxConsumer) Any(name string, value interface{}) { c.add(name, value) }

var _ errors.ErrorContextConsumer = &ctxConsumer{}
