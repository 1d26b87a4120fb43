package binser

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserialize_DefaultInstance(t *testing.T) {
	t.Cleanup(func() { _ = Unregister("binser_test.Widget") })

	data, err := Serialize(int64(7), "hi", true, nil)
	require.NoError(t, err)

	values, err := Deserialize(data)
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Equal(t, int64(7), values[0])
	assert.Equal(t, "hi", values[1])
	assert.Equal(t, true, values[2])
	assert.Nil(t, values[3])
}

func TestDeserializeN_StopsEarly(t *testing.T) {
	data, err := Serialize(int64(1), int64(2), int64(3))
	require.NoError(t, err)

	values, err := DeserializeN(data, 2)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, int64(1), values[0])
	assert.Equal(t, int64(2), values[1])
}

type widget struct {
	Name  string
	Count int64
}

func TestRegisterClass_DefaultInstance(t *testing.T) {
	require.NoError(t, RegisterClass(widget{}, "binser_test.Widget"))
	t.Cleanup(func() { _ = Unregister("binser_test.Widget") })

	obj := &widget{Name: "gear", Count: 3}
	data, err := Serialize(obj)
	require.NoError(t, err)

	values, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, obj, values[0].(*widget))
}

func TestRegisterResource_DefaultInstance(t *testing.T) {
	logger := &struct{ Prefix string }{Prefix: "app"}
	require.NoError(t, RegisterResource(logger, "binser_test.logger"))
	t.Cleanup(func() { _ = UnregisterResource("binser_test.logger") })

	data, err := Serialize(logger, logger)
	require.NoError(t, err)

	values, err := Deserialize(data)
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Same(t, logger, values[0])
	assert.Same(t, logger, values[1])
}

func TestNewInstance_IsIndependentOfDefault(t *testing.T) {
	inst := NewInstance()

	require.NoError(t, inst.RegisterClass(widget{}, "binser_test.ScopedWidget"))

	data, err := inst.Serialize(&widget{Name: "only-here", Count: 1})
	require.NoError(t, err)

	_, err = Deserialize(data)
	require.Error(t, err)

	values, err := inst.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, &widget{Name: "only-here", Count: 1}, values[0])
}

func TestRegister_LowLevelCustomType(t *testing.T) {
	type point struct{ X, Y int64 }
	inst := NewInstance()

	err := inst.Register(
		reflect.TypeOf(point{}),
		"binser_test.Point",
		func(obj any) ([]any, error) {
			p := obj.(*point)
			return []any{"X", p.X, "Y", p.Y}, nil
		},
		func(args []any) (any, error) {
			p := &point{}
			for i := 0; i+1 < len(args); i += 2 {
				switch args[i].(string) {
				case "X":
					p.X = args[i+1].(int64)
				case "Y":
					p.Y = args[i+1].(int64)
				}
			}
			return p, nil
		},
		nil,
	)
	require.NoError(t, err)

	data, err := inst.Serialize(&point{X: 5, Y: 6})
	require.NoError(t, err)

	values, err := inst.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, &point{X: 5, Y: 6}, values[0])
}

