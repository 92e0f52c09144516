package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView fills same-named fields of dst from src, rendering ids as strings.
func copyView(dst, src any) {
	_ = copier.CopyWithOption(dst, src, copyOption)
}
