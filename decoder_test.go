package eis_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/eis"
)

func TestInstructionWord(t *testing.T) {
	ops := []eis.Opcode{
		eis.AD2D, eis.SB2D, eis.MP2D, eis.DV2D,
		eis.AD3D, eis.SB3D, eis.MP3D, eis.DV3D,
	}

	ctls := []eis.Control{
		{},
		{P: true},
		{T: true},
		{R: true},
		{P: true, T: true, R: true},
	}

	for _, op := range ops {
		for i, ctl := range ctls {
			t.Run(fmt.Sprintf("%s[%d]", op, i), func(t *testing.T) {
				word := eis.EncodeInstruction(op, ctl)
				t.Logf("Word: %012o\n", word)

				gotOp, gotCtl, err := eis.DecodeInstruction(word)
				require.NoError(t, err)
				require.Equal(t, op, gotOp)
				require.Equal(t, ctl, gotCtl)
			})
		}
	}

	t.Run("ad2d word", func(t *testing.T) {
		op, ctl, err := eis.DecodeInstruction(0o400000_202400 | 1<<25)
		require.NoError(t, err)
		require.Equal(t, eis.AD2D, op)
		require.Equal(t, eis.Control{P: true, R: true}, ctl)
	})

	t.Run("not decimal", func(t *testing.T) {
		_, _, err := eis.DecodeInstruction(0o000000_202000)
		require.Error(t, err)

		_, _, err = eis.DecodeInstruction(0o000000_100400)
		require.Error(t, err)
		require.True(t, eis.Error.Has(err))
	})
}

func TestOpcode(t *testing.T) {
	require.Equal(t, 2, eis.AD2D.Operands())
	require.Equal(t, 3, eis.DV3D.Operands())
	require.Equal(t, "mp3d", eis.MP3D.String())
	require.True(t, eis.SB2D.Valid())
	require.False(t, eis.Opcode(0o100).Valid())
}
