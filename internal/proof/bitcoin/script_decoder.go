package bitcoin

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/txscript"
)

// nullData returns the data pushed by an OP_RETURN output. ok is false for
// any other script class or an undecodable script.
func nullData(vout btcjson.Vout) (data []byte, ok bool) {
	if vout.ScriptPubKey.Hex == "" {
		return nil, false
	}
	script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return nil, false
	}
	if txscript.GetScriptClass(script) != txscript.NullDataTy {
		return nil, false
	}
	pushes, err := txscript.PushedData(script)
	if err != nil {
		return nil, false
	}
	return bytes.Join(pushes, nil), true
}

// carriesPayload reports whether any output of tx embeds payload.
func carriesPayload(tx *btcjson.TxRawResult, payload []byte) bool {
	for _, out := range tx.Vout {
		if data, ok := nullData(out); ok && bytes.Equal(data, payload) {
			return true
		}
	}
	return false
}
