package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactPage = `<body>
<form id="contact">
  <input type="text" name="name" value="Ada">
  <input type="email" name="email">
  <textarea name="message">Hello
there</textarea>
  <button class="btn" type="submit">Send</button>
</form>
</body>`

func TestElement_QueryScoped(t *testing.T) {
	doc, err := Parse(strings.NewReader(contactPage))
	require.NoError(t, err)
	form, ok := doc.ByID("contact")
	require.True(t, ok)

	assert.Len(t, form.Controls(), 3)
	assert.Empty(t, form.Query("form"), "an element does not match itself")
	assert.Nil(t, form.Query("[[["))
}

func TestElement_Values(t *testing.T) {
	doc, err := Parse(strings.NewReader(contactPage))
	require.NoError(t, err)
	form, _ := doc.ByID("contact")
	ctrls := form.Controls()

	assert.Equal(t, "Ada", ctrls[0].Value())
	assert.Equal(t, "", ctrls[1].Value())
	assert.Equal(t, "Hello\nthere", ctrls[2].Value())

	ctrls[1].SetValue("ada@example.com")
	ctrls[2].SetValue("")
	assert.Equal(t, "ada@example.com", ctrls[1].Value())
	assert.Equal(t, "", ctrls[2].Value())

	ctrls[2].SetValue("again")
	assert.Equal(t, "again", ctrls[2].Text())
}
