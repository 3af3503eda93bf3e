package ai

import (
	"fmt"
	"strconv"
	"strings"

	"fashionshop-ai-gateway/internal/pkg/models"
)

// descriptionLimit is the cut-off for product descriptions inside the
// prompt; anything longer is truncated with an ellipsis.
const descriptionLimit = 100

// ShopSystemPrompt is the fixed instructional text sent with every model
// invocation. It defines the assistant's persona, the store policies and
// the answer format, including one worked example.
const ShopSystemPrompt = `Bạn là trợ lý AI thông minh của một shop quần áo thời trang tên "Fashion Shop".

THÔNG TIN SHOP:
- Sản phẩm: Áo thun, áo sơ mi, quần short, quần kaki cho nam và nữ
- Giá: 167.000đ - 347.000đ
- Size: S, M, L, XL
- Màu sắc: Đen, Trắng, Xanh, Nâu/Be
- Chính sách:
  + Miễn phí ship đơn từ 300.000đ
  + Giao hàng 2-3 ngày
  + Đổi size miễn phí trong 7 ngày
  + Hoàn tiền 100% nếu lỗi sản xuất

NHIỆM VỤ CỦA BẠN:
✅ Tư vấn sản phẩm phù hợp với nhu cầu khách hàng
✅ Hướng dẫn chọn size dựa trên cân nặng/chiều cao
✅ Tư vấn phối màu và phong cách
✅ Giải đáp về giá cả, khuyến mãi
✅ Hướng dẫn về giao hàng và đổi trả

CÁCH TRẢ LỜI:
- Nhiệt tình, thân thiện, chuyên nghiệp
- Ngắn gọn, dễ hiểu (80-150 từ)
- Dùng emoji phù hợp (👕 💰 🚚 ✅)
- Đề xuất sản phẩm cụ thể khi có thể
- Hỏi lại nếu cần thêm thông tin

VÍ DỤ TRẢ LỜI TỐT:
"Chào bạn! 👕 Với cân nặng 65kg và cao 1m70, mình khuyên bạn nên chọn size M cho áo thun. Size này sẽ vừa vặn và thoải mái.

Về màu sắc, nếu bạn thích phong cách lịch sự thì có thể chọn:
⚫ Đen - Dễ phối, sang trọng
⚪ Trắng - Tươi mới, thanh lịch

Bạn có muốn xem thêm về áo thun The Trainer (297.000đ) hay Sweater The Minimalist (327.000đ) không?"
`

// ComposeSystemPrompt returns the shop system prompt, extended with the
// given product suggestions. With no products the template is returned
// verbatim.
func ComposeSystemPrompt(products []models.ProductSuggestion) string {
	if len(products) == 0 {
		return ShopSystemPrompt
	}

	var b strings.Builder
	b.WriteString(ShopSystemPrompt)
	b.WriteString("\nSẢN PHẨM GỢI Ý TỪ CỬA HÀNG:\n")
	for i, p := range products {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   Giá: %s\n", FormatPrice(p.Price))
		if p.Description != "" {
			fmt.Fprintf(&b, "   Mô tả: %s\n", truncate(p.Description, descriptionLimit))
		}
		if len(p.Colors) > 0 {
			fmt.Fprintf(&b, "   Màu sắc: %s\n", strings.Join(p.Colors, ", "))
		}
		if len(p.Sizes) > 0 {
			fmt.Fprintf(&b, "   Size: %s\n", strings.Join(p.Sizes, ", "))
		}
		if p.IsPreorder {
			fmt.Fprintf(&b, "   Đặt trước: giao sau %d ngày\n", p.PreorderDays)
		}
		fmt.Fprintf(&b, "   Mã sản phẩm: %s\n", p.ProductID)
	}
	b.WriteString("\nHãy ưu tiên giới thiệu 2-3 sản phẩm phù hợp nhất ở trên cho khách.")
	return b.String()
}

// FormatPrice renders an amount the way the storefront does: integer VND
// with dot-grouped thousands and the đ suffix, e.g. 297000 -> "297.000đ".
func FormatPrice(amount float64) string {
	n := int64(amount + 0.5)
	s := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	b.WriteString("đ")
	return b.String()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
